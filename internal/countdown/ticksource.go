package countdown

// TickSource delivers periodic ticks to a Controller.
//
// Arm starts a source that calls Controller.Tick with id once per interval.
// Cancel stops the source armed with id. The controller never arms a second id
// without cancelling the first.
//
//go:generate mockgen -source=ticksource.go -destination=mock_ticksource_test.go -package=countdown
type TickSource interface {
	Arm(id uint64)
	Cancel(id uint64)
}

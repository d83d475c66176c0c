package services

import "time"

// Sleeper performs the fixed simulated processing delay standing in for
// network latency. The prototype supports no cancellation: once a submission
// begins its delay it always completes and reports its outcome, so the
// sleeper deliberately ignores context cancellation.
type Sleeper func(d time.Duration)

// realSleep is the production sleeper
func realSleep(d time.Duration) {
	time.Sleep(d)
}

// Metric status labels shared by the simulated operations
const (
	statusAccepted = "accepted"
	statusRejected = "rejected"
)

package port

// QuotaService tracks metered usage of the video platform API. It is passed
// explicitly into any code path that calls the metered API; there is no
// ambient global counter.
type QuotaService interface {
	// Check reports whether units more can be spent today.
	Check(units int) bool
	// Record charges units against today's budget, attributed to op.
	Record(units int, op string)
}

package constants

// NATS Subjects
const (
	// Orders service
	SubjectOrderCreated          = "orders.created"
	SubjectOrderStatusChanged    = "orders.status.changed"
	SubjectOrderPaymentConfirmed = "orders.payment.confirmed"
	SubjectOrderCancelled        = "orders.cancelled"

	// Billing service
	SubjectCollecteRecomputed = "billing.collecte.recomputed"
	SubjectCollectePaid       = "billing.collecte.paid"
)

// NATS queue groups
const (
	QueueGroupBilling = "billing-service"
)

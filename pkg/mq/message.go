package mq

// DeadLetterSuffix names the queue that receives rejected messages of a work queue.
const DeadLetterSuffix = ".dead"

// Message is an outgoing event. ID becomes the AMQP message id and should be stable
// across republishing so receivers can deduplicate.
type Message struct {
	Exchange   string
	RoutingKey string
	ID         string
	Body       []byte
	Headers    map[string]any
}

// Delivery is an incoming message handed to a Handle.
type Delivery struct {
	ID          string
	Queue       string
	Body        []byte
	Redelivered bool
}

func DeadLetterQueue(queue string) string {
	return queue + DeadLetterSuffix
}

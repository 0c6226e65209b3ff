package produce

import amqp "github.com/rabbitmq/amqp091-go"

// NotificationExchange carries admin-facing notification events; a
// separate notifier service consumes them.
const NotificationExchange = "portfolio.notifications"

type Produce struct {
	NotifyService *NotifyService
}

var produceInstance *Produce

func InitProduce(channel *amqp.Channel) *Produce {
	if produceInstance != nil {
		return produceInstance
	}

	notifyService := InitNotifyService(channel)
	if notifyService == nil {
		panic("Failed to initialize Notify service")
	}

	produceInstance = &Produce{
		NotifyService: notifyService,
	}

	return produceInstance
}

func GetProduce() *Produce {
	if produceInstance == nil {
		panic("Produce not initialized. Call InitProduce() first.")
	}
	return produceInstance
}

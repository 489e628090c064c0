// Package publisher holds the ports.EventPublisher adapters. Events reach a
// publisher only after the unit of work that produced them has committed.
//
//   - Log writes each event to the structured logger.
//   - Webhook posts the batch as JSON to the event gateway.
//   - Redis publishes each event on a pub/sub channel.
package publisher

// Package broadcast provides type-safe, non-blocking one-to-many message
// delivery. The session coordinator uses it as its notification sink: each
// emitted event reaches every active subscriber at most once, and slow
// subscribers are dropped rather than allowed to stall the emitter.
//
// Basic usage:
//
//	hub := broadcast.NewMemory[string](8)
//	defer hub.Close()
//
//	sub := hub.Subscribe(ctx)
//	defer sub.Close()
//
//	hub.Broadcast(ctx, broadcast.Message[string]{Data: "hello"})
//
//	for msg := range sub.Receive() {
//		fmt.Println(msg.Data)
//	}
package broadcast

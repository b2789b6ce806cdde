// Package ecs provides ECS adapters for stage's interaction events.
//
// The primary adapter is [NewDonburiSink], which bridges stage interaction
// events (click consumed, hover start/end, show/hide) into a [Donburi] world
// as typed events. Subscribe to [InteractionEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	reg.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

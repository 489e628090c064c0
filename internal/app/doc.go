// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port
// interfaces. Every command runs inside its own unit of work.
package app

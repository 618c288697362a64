// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services never import adapters. Timers come from internal/debounce so
// tests can drive them by hand.
package services

// Package ui contains the Fyne desktop interface. RootUI implements
// controller.View; every update it receives is marshalled onto the Fyne
// goroutine, so the controller and the job poller may call it from anywhere.
package ui

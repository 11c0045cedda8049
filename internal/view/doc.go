// Package view turns service payloads into display models. Nothing here
// touches widgets: every function is pure and every text field it emits is
// meant for plain-text display.
package view

package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It builds the header bar and the destination list, and renders each row
// through a pure styling function applied to a reusable cell widget.

package ui

// Package ui contains the Fyne-based desktop user interface. It forwards user
// input to the download controller and redraws itself from the view state the
// controller reports. All chrome strings are localized via Localization.

package parameter

import "time"

// Frame timing
const (
	// FrameRate is the default frame driver rate in frames per second
	FrameRate = 60
)

// Typewriter
const (
	TypewriterStartDelay  = 1000 * time.Millisecond
	TypewriterTypeDelay   = 100 * time.Millisecond
	TypewriterDeleteDelay = 50 * time.Millisecond
	TypewriterHoldDelay   = 2000 * time.Millisecond
	TypewriterNextDelay   = 500 * time.Millisecond
)

// Scroll thresholds, all in surface units
const (
	// NavScrolledThreshold is the scroll offset past which the navbar switches to its scrolled style
	NavScrolledThreshold = 50.0
	// NavActiveOffset is subtracted from a section top when choosing the active nav link
	NavActiveOffset = 200.0
	// RevealMargin is the bottom margin an element top must clear to reveal
	RevealMargin = 100.0
	// CardVisibleFraction is the share of a card that must be visible before it reveals
	CardVisibleFraction = 0.1
	// CardHiddenOffset is how far below its slot a hidden card is drawn
	CardHiddenOffset = 50.0
	// FieldHiddenOffset is how far below its slot a hidden form field is drawn
	FieldHiddenOffset = 30.0
	// ScrollStep is the distance one wheel notch or arrow key scrolls
	ScrollStep = 48.0
)

// Navigation
const (
	// MobileBreakpoint is the terminal width in columns under which the navbar collapses to a hamburger
	MobileBreakpoint = 72
	// SmoothScrollDuration is how long an anchor jump takes to settle
	SmoothScrollDuration = 400 * time.Millisecond
	// ContactLinkCheckDelay is the wait after a contact link jump before the contact animation check
	ContactLinkCheckDelay = 800 * time.Millisecond
	// InitialContactCheckDelay is the wait after start before the first contact animation check
	InitialContactCheckDelay = 300 * time.Millisecond
)

// Contact form
const (
	// FieldRevealStep spaces the cascading reveal of form fields
	FieldRevealStep = 150 * time.Millisecond
	// FormSendingDelay is how long the submit button shows the sending state
	FormSendingDelay = 1000 * time.Millisecond
	// FormSentDelay is how long the success state stays before the form resets
	FormSentDelay = 3000 * time.Millisecond
	// FormReRevealDelay is the wait between hiding and re-showing fields after a reset
	FormReRevealDelay = 100 * time.Millisecond

	ButtonTextIdle    = "Send Message"
	ButtonTextSending = "Sending..."
	ButtonTextSent    = "Message Sent!"
)

// Footer
const (
	// FooterYearToken is replaced with the current year in the footer text
	FooterYearToken = "2025"
)

// Transitions
const (
	// RevealTransition is the ease-out duration of card and field reveals
	RevealTransition = 600 * time.Millisecond
)

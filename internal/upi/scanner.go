package upi

import (
	"github.com/Veraticus/paisa/internal/common"
)

// Permission tracks the camera-permission sub-states of the scan stage.
type Permission int

const (
	// PermissionUnknown shows a loading indicator until resolved.
	PermissionUnknown Permission = iota
	PermissionGranted
	PermissionDenied
)

// Scanner is the scan-stage state machine. Decodes are locked out after
// the first accepted payload to prevent duplicate hand-offs; the lock is
// released manually ("Scan Again") or automatically on any decode
// failure. The manual fallback is available in every state.
type Scanner struct {
	amount      string
	currency    string
	fallbackApp string
	launcher    Launcher
	onFallback  func()
	permission  Permission
	scanned     bool
}

// NewScanner creates a scanner for the given payment amount. onFallback
// is the caller's recovery path, invoked when the direct app launch
// fails; it may be nil.
func NewScanner(amount, currency, fallbackApp string, launcher Launcher, onFallback func()) *Scanner {
	return &Scanner{
		amount:      amount,
		currency:    currency,
		fallbackApp: fallbackApp,
		launcher:    launcher,
		onFallback:  onFallback,
	}
}

// Amount returns the payment amount carried into the hand-off.
func (s *Scanner) Amount() string { return s.amount }

// Permission returns the camera-permission state.
func (s *Scanner) Permission() Permission { return s.permission }

// SetPermission resolves the permission state.
func (s *Scanner) SetPermission(p Permission) { s.permission = p }

// Scanned reports whether decodes are currently locked out.
func (s *Scanner) Scanned() bool { return s.scanned }

// ScanAgain releases the decode lock.
func (s *Scanner) ScanAgain() { s.scanned = false }

// HandleDecode processes one decoded QR payload. Accepted payloads are
// augmented with the amount and currency and dispatched as an external
// open request; the returned string is the dispatched link. Rejected or
// failed payloads re-enable scanning and return an error for the UI to
// surface. A locked-out decode is ignored entirely.
func (s *Scanner) HandleDecode(data string) (string, error) {
	if s.scanned {
		return "", nil
	}
	s.scanned = true

	if !IsPaymentURI(data) {
		s.scanned = false
		return "", common.NewValidationError("qr", "Invalid QR Code")
	}

	link := WithAmount(data, s.amount, s.currency)
	if err := s.launcher.OpenURL(link); err != nil {
		s.scanned = false
		return "", &common.ExternalAppError{App: s.fallbackApp, Err: err}
	}
	return link, nil
}

// Fallback tries to open the payment application directly. On launch
// failure it surfaces the error and hands control to the caller-supplied
// fallback path.
func (s *Scanner) Fallback() error {
	if err := s.launcher.OpenApp(s.fallbackApp); err != nil {
		if s.onFallback != nil {
			s.onFallback()
		}
		return &common.ExternalAppError{App: s.fallbackApp, Err: err}
	}
	return nil
}

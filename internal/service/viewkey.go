package service

import "workerguard-console/internal/domain"

// ResolveViewKey canonicalizes the current UI selections into the fetch
// descriptor. Pure; no side effects. The center selector is irrelevant for
// the settings tab and is blanked so that equal selections always compare
// equal as keys.
func ResolveViewKey(tab domain.Tab, mode domain.Mode, center, month, date string) domain.ViewKey {
	key := domain.ViewKey{
		Tab:    tab,
		Mode:   mode,
		Center: center,
		Month:  month,
		Date:   date,
	}
	if tab == domain.TabSettings {
		key.Center = ""
	}
	return key
}

// Package services contains the interaction controllers of the ScentID
// client: the authentication session (AuthService), the scan workflow
// (ScanService), optimistic favorite toggling (FavoriteService) and the
// debounced, race-safe search coordinator (SearchService).
//
// Controllers talk to the backend exclusively through api.Client and keep
// their own state; the UI layer observes that state and renders it. None of
// them retries failed calls.
package services

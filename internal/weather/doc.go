package weather

// Package weather resolves a location and fetches current conditions from
// open-meteo, with nominatim for geocoding. A Poller refreshes on a fixed
// interval and debounces location changes so typing in the settings dialog
// does not fire a request per keystroke.

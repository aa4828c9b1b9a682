// Package timezone pins every timestamp the API writes or renders to APP_TIMEZONE.
//
//	now := timezone.Now()
//	day := timezone.Format(booking.BookingDate, constant.DateOnlyFormat)
//	t, err := timezone.Parse(time.DateOnly, "2024-01-01")
//
// Use IANA names such as "UTC", "Asia/Kolkata" or "Europe/London". Unknown names fall back
// to UTC with an error log.
package timezone

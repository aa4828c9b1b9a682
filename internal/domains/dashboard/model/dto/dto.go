package dto

import (
	bookingModel "hotelier/internal/domains/booking/model"
	"hotelier/shared/constant"
	"hotelier/shared/timezone"
)

const UnknownHotel = "Unknown Hotel"

type Activity struct {
	Message string `json:"message"`
	Time    string `json:"time"`
}

// NewActivity describes one booking for the recent activity feed.
func NewActivity(booking bookingModel.Booking) Activity {
	hotel := UnknownHotel
	if booking.HotelName != nil && *booking.HotelName != constant.Empty {
		hotel = *booking.HotelName
	}

	return Activity{
		Message: "New booking at " + hotel,
		Time:    timezone.Format(booking.BookingDate, constant.DateOnlyFormat),
	}
}

type StatsResponse struct {
	TotalUsers       int        `json:"totalUsers"`
	TotalBookings    int        `json:"totalBookings"`
	TotalHotels      int        `json:"totalHotels"`
	TotalRevenue     float64    `json:"totalRevenue"`
	TotalSubscribers int        `json:"totalSubscribers"`
	RecentActivity   []Activity `json:"recentActivity"`
}

package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type BookingReceivedMailData struct {
	CustomerName string `json:"customerName"`
	Stylist      string `json:"stylist"`
	Service      string `json:"service"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Price        int32  `json:"price"`
	BookingRef   string `json:"bookingRef"`
}

type CreateUserMailData struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type ResetPasswordMailData struct {
	FullName   string `json:"fullName"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}

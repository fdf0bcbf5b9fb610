package settings

import "time"

// Layout modes for the seating area
const (
	ModeIndividualSeats = "individual-seats"
	ModeGroupedSlots    = "grouped-slots"
)

// Settings section names accepted by the section endpoints
const (
	SectionGeneral = "general"
	SectionDates   = "dates"
	SectionSeats   = "seats"
	SectionPrices  = "prices"
	SectionDesign  = "design"
	SectionSystem  = "system"
)

// GeneralSettings covers event identity and global switches
type GeneralSettings struct {
	EventName              string `json:"eventName"`
	EventLocation          string `json:"eventLocation"`
	EventTime              string `json:"eventTime"`
	DoorsOpen              string `json:"doorsOpen"`
	SystemActive           bool   `json:"systemActive"`
	MaxDailyReservations   int    `json:"maxDailyReservations"`
	MaxReservationsPerUser int    `json:"maxReservationsPerUser"`
	Language               string `json:"language"`
	Timezone               string `json:"timezone"`
	DateFormat             string `json:"dateFormat"`
}

// DateSettings controls which calendar dates are bookable.
// AvailableDates and BlockedDates hold dates in YYYY-MM-DD form;
// Weekdays uses 0=Sunday..6=Saturday.
type DateSettings struct {
	AvailableDates []string `json:"availableDates"`
	BlockedDates   []string `json:"blockedDates"`
	Weekdays       []int    `json:"weekdays"`
	BookingStart   string   `json:"bookingStart"`
	BookingEnd     string   `json:"bookingEnd"`
	MaxAdvanceDays int      `json:"maxAdvanceDays"`
}

// SeatSettings describes the seating area layout and selection limits
type SeatSettings struct {
	Mode              string `json:"mode"`
	Rows              int    `json:"rows"`
	SeatsPerRow       int    `json:"seatsPerRow"`
	StageName         string `json:"stageName"`
	AislePosition     string `json:"aislePosition"`
	GroupCount        int    `json:"groupCount"`
	SlotsPerGroup     int    `json:"slotsPerGroup"`
	GroupName         string `json:"groupName"`
	GroupLayout       string `json:"groupLayout"`
	MaxSeatsPerBooking int   `json:"maxSeatsPerBooking"`
	MinSeatsPerBooking int   `json:"minSeatsPerBooking"`
	SeatSelectionMode string `json:"seatSelectionMode"`
}

// PriceSettings controls pricing, the free-event switch and discounts
type PriceSettings struct {
	FreeEvent             bool    `json:"freeEvent"`
	Currency              string  `json:"currency"`
	TaxRate               float64 `json:"taxRate"`
	SeatPrice             float64 `json:"seatPrice"`
	VipPrice              float64 `json:"vipPrice"`
	VipRows               int     `json:"vipRows"`
	GroupPrice            float64 `json:"groupPrice"`
	SlotPrice             float64 `json:"slotPrice"`
	DiscountGroups        int     `json:"discountGroups"`
	PaymentCash           bool    `json:"paymentCash"`
	PaymentCard           bool    `json:"paymentCard"`
	PaymentOnline         bool    `json:"paymentOnline"`
	InvoiceRequired       bool    `json:"invoiceRequired"`
	EarlyBirdDiscount     float64 `json:"earlyBirdDiscount"`
	GroupDiscount         float64 `json:"groupDiscount"`
	GroupDiscountMinSeats int     `json:"groupDiscountMinSeats"`
}

// DesignSettings holds the customer-facing theming values
type DesignSettings struct {
	PrimaryColor     string `json:"primaryColor"`
	SecondaryColor   string `json:"secondaryColor"`
	BackgroundColor  string `json:"backgroundColor"`
	FontFamily       string `json:"fontFamily"`
	FontSize         int    `json:"fontSize"`
	WelcomeText      string `json:"welcomeText"`
	ConfirmationText string `json:"confirmationText"`
	TermsText        string `json:"termsText"`
	PrivacyText      string `json:"privacyText"`
	LogoURL          string `json:"logoUrl"`
	FaviconURL       string `json:"faviconUrl"`
	BackgroundImage  string `json:"backgroundImage"`
}

// SystemSettings holds operator-only metadata
type SystemSettings struct {
	EmailSender      string `json:"emailSender"`
	EmailFrom        string `json:"emailFrom"`
	SMTPHost         string `json:"smtpHost"`
	SMTPPort         int    `json:"smtpPort"`
	AnalyticsEnabled bool   `json:"analyticsEnabled"`
	AutoBackupDays   int    `json:"autoBackup"`
	Version          string `json:"version"`
	LastUpdate       string `json:"lastUpdate"`
}

// Settings is the full persisted settings document
type Settings struct {
	General GeneralSettings `json:"general"`
	Dates   DateSettings    `json:"dates"`
	Seats   SeatSettings    `json:"seats"`
	Prices  PriceSettings   `json:"prices"`
	Design  DesignSettings  `json:"design"`
	System  SystemSettings  `json:"system"`
}

// PublicSettings is the customer-facing view. It excludes the
// operator-only system section.
type PublicSettings struct {
	General GeneralSettings `json:"general"`
	Dates   DateSettings    `json:"dates"`
	Seats   SeatSettings    `json:"seats"`
	Prices  PriceSettings   `json:"prices"`
	Design  DesignSettings  `json:"design"`
}

// Defaults returns the settings document a fresh installation starts with
func Defaults() *Settings {
	now := time.Now().UTC()
	return &Settings{
		General: GeneralSettings{
			EventName:              "Main Event",
			EventLocation:          "Town Hall",
			EventTime:              "19:00",
			DoorsOpen:              "18:00",
			SystemActive:           true,
			MaxDailyReservations:   50,
			MaxReservationsPerUser: 3,
			Language:               "en",
			Timezone:               "Europe/Berlin",
			DateFormat:             "en-GB",
		},
		Dates: DateSettings{
			AvailableDates: []string{},
			BlockedDates:   []string{},
			Weekdays:       []int{1, 2, 3, 4, 5},
			BookingStart:   now.Format(DateLayout),
			BookingEnd:     now.AddDate(0, 0, 60).Format(DateLayout),
			MaxAdvanceDays: 60,
		},
		Seats: SeatSettings{
			Mode:               ModeIndividualSeats,
			Rows:               8,
			SeatsPerRow:        10,
			StageName:          "STAGE",
			AislePosition:      "middle",
			GroupCount:         10,
			SlotsPerGroup:      6,
			GroupName:          "Table",
			GroupLayout:        "grid",
			MaxSeatsPerBooking: 8,
			MinSeatsPerBooking: 1,
			SeatSelectionMode:  "multiple",
		},
		Prices: PriceSettings{
			FreeEvent:             true,
			Currency:              "EUR",
			TaxRate:               19,
			SeatPrice:             10,
			VipPrice:              15,
			VipRows:               2,
			GroupPrice:            50,
			SlotPrice:             8,
			DiscountGroups:        5,
			PaymentCash:           true,
			PaymentCard:           true,
			PaymentOnline:         false,
			InvoiceRequired:       false,
			EarlyBirdDiscount:     10,
			GroupDiscount:         15,
			GroupDiscountMinSeats: 8,
		},
		Design: DesignSettings{
			PrimaryColor:     "#4CAF50",
			SecondaryColor:   "#3498db",
			BackgroundColor:  "#f8f9fa",
			FontFamily:       "'Segoe UI', Tahoma, Geneva, Verdana, sans-serif",
			FontSize:         16,
			WelcomeText:      "Welcome! Book your seats now.",
			ConfirmationText: "Thank you for your reservation!",
		},
		System: SystemSettings{
			EmailSender:    "Reservation System",
			SMTPPort:       587,
			AutoBackupDays: 7,
			Version:        "1.0.0",
			LastUpdate:     now.Format(time.RFC3339),
		},
	}
}

// DateLayout is the canonical wire format for calendar dates
const DateLayout = "2006-01-02"

// Public strips operator-only data from the full document
func (s *Settings) Public() *PublicSettings {
	return &PublicSettings{
		General: s.General,
		Dates:   s.Dates,
		Seats:   s.Seats,
		Prices:  s.Prices,
		Design:  s.Design,
	}
}

// Normalize clamps values that would render the layout or the booking
// flow unusable. It never rejects a document; it repairs it.
func (s *Settings) Normalize() {
	if s.Seats.Mode != ModeIndividualSeats && s.Seats.Mode != ModeGroupedSlots {
		s.Seats.Mode = ModeIndividualSeats
	}
	if s.Seats.Rows < 1 {
		s.Seats.Rows = 1
	}
	if s.Seats.SeatsPerRow < 1 {
		s.Seats.SeatsPerRow = 1
	}
	if s.Seats.GroupCount < 1 {
		s.Seats.GroupCount = 1
	}
	if s.Seats.SlotsPerGroup < 1 {
		s.Seats.SlotsPerGroup = 1
	}
	if s.Seats.MinSeatsPerBooking < 1 {
		s.Seats.MinSeatsPerBooking = 1
	}
	if s.Seats.MaxSeatsPerBooking < s.Seats.MinSeatsPerBooking {
		s.Seats.MaxSeatsPerBooking = s.Seats.MinSeatsPerBooking
	}
	if s.Prices.VipRows < 0 {
		s.Prices.VipRows = 0
	}
	if s.Prices.DiscountGroups < 1 {
		s.Prices.DiscountGroups = 1
	}
	if s.Prices.GroupDiscountMinSeats < 1 {
		s.Prices.GroupDiscountMinSeats = 1
	}
	if s.Dates.Weekdays == nil {
		s.Dates.Weekdays = []int{}
	}
	if s.Dates.AvailableDates == nil {
		s.Dates.AvailableDates = []string{}
	}
	if s.Dates.BlockedDates == nil {
		s.Dates.BlockedDates = []string{}
	}
}

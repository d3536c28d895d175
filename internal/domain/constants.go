package domain

// Тарифы на чистку, злотые
const (
	TariffSofa         = 180.0
	TariffSofaPillows  = 500.0 // доплата за подушки, за диван
	TariffArmchair     = 40.0
	TariffChair        = 20.0
	TariffMattress     = 90.0
	TariffCarpetPerSqM = 15.0
)

// Нормативы длительности работ, минуты
const (
	MinutesPerSofa      = 90.0
	MinutesPerArmchair  = 45.0
	MinutesPerChair     = 30.0
	MinutesPerMattress  = 60.0
	MinutesPerCarpetSqM = 18.0
)

// Границы частей суток (по часу начала слота)
const (
	MorningEndHour   = 12 // morning: до 12:00
	AfternoonEndHour = 17 // afternoon: до 17:00
)

// Валидация входных данных
const (
	MinAddressLength = 10
	MinCommentLength = 10
	MinRating        = 1
	MaxRating        = 5
	MaxPhotoCount    = 10
	MaxCarpetAreaSqM = 500
	MaxItemCount     = 50
	MaxReasonLength  = 500
)

// Предустановленные шаблоны времени слотов по частям суток.
// Используются генератором, когда администратор не задал собственные шаблоны.
var (
	DefaultMorningTemplates   = []string{"08:00", "08:30", "09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}
	DefaultAfternoonTemplates = []string{"12:00", "12:30", "13:00", "13:30", "14:00", "14:30", "15:00", "15:30", "16:00", "16:30"}
	DefaultEveningTemplates   = []string{"17:00", "17:30", "18:00", "18:30", "19:00", "19:30", "20:00", "20:30"}
)

// DefaultSlotTemplates возвращает полный набор предустановленных шаблонов времени
func DefaultSlotTemplates() []string {
	templates := make([]string, 0, len(DefaultMorningTemplates)+len(DefaultAfternoonTemplates)+len(DefaultEveningTemplates))
	templates = append(templates, DefaultMorningTemplates...)
	templates = append(templates, DefaultAfternoonTemplates...)
	templates = append(templates, DefaultEveningTemplates...)
	return templates
}

// Роли вызывающей стороны; заполняются identity-слоем перед сервисом
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Форматы даты и времени
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

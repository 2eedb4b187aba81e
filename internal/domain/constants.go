package domain

// SlotStepMinutes фиксированный шаг сетки слотов.
// Кандидаты на бронирование предлагаются каждые 30 минут независимо
// от длительности услуги — это политика расписания, а не свойство услуги.
const SlotStepMinutes = 30

// CancellationNoticeHours минимальный срок до начала записи,
// при котором клиент ещё может её отменить
const CancellationNoticeHours = 24

// Business validation constants
const (
	MinRating          = 1
	MaxRating          = 5
	MaxCommentLength   = 1000
	MaxDurationMinutes = 24 * 60
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы бронирований, занимающих слот.
// Завершённые и отменённые записи слот освобождают.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

package dto

type DayOutput struct {
	Date             string `json:"date"`
	CompletedCount   int    `json:"completed_count"`
	InterruptedCount int    `json:"interrupted_count"`
	AbandonedCount   int    `json:"abandoned_count"`
	FocusMinutes     int    `json:"focus_minutes"`
	GoalMet          bool   `json:"goal_met"`
}

type TodayOutput struct {
	Day           DayOutput `json:"day"`
	Goal          int       `json:"goal"`
	Streak        int       `json:"streak"`
	ImagePath     string    `json:"image_path,omitempty"`
	RenderWarning string    `json:"-"`
}

type WeekOutput struct {
	Start          string      `json:"start"`
	End            string      `json:"end"`
	Days           []DayOutput `json:"days"`
	TotalCompleted int         `json:"total_completed"`
	TotalMinutes   int         `json:"total_minutes"`
	DailyAverage   float64     `json:"daily_average"`
	Goal           int         `json:"goal"`
	ImagePath      string      `json:"image_path,omitempty"`
	RenderWarning  string      `json:"-"`
}

type HeatmapCellOutput struct {
	Date      string  `json:"date"`
	Day       int     `json:"day"`
	Completed int     `json:"completed"`
	Minutes   int     `json:"minutes"`
	Intensity float64 `json:"intensity"`
	Level     int     `json:"level"`
}

type HeatmapOutput struct {
	Year           int                 `json:"year"`
	Month          int                 `json:"month"`
	Cells          []HeatmapCellOutput `json:"cells"`
	MaxCompleted   int                 `json:"max_completed"`
	TotalCompleted int                 `json:"total_completed"`
	TotalMinutes   int                 `json:"total_minutes"`
	ActiveDays     int                 `json:"active_days"`
	Goal           int                 `json:"goal"`
	ImagePath      string              `json:"image_path,omitempty"`
	RenderWarning  string              `json:"-"`
}

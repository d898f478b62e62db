package fitbit

// DailyActivityResponse is /1/user/-/activities/date/{date}.json.
type DailyActivityResponse struct {
	Activities []LoggedActivity `json:"activities"`
	Summary    ActivitySummary  `json:"summary"`
}

type LoggedActivity struct {
	ActivityID   int64   `json:"activityId"`
	Name         string  `json:"name"`
	Calories     int     `json:"calories"`
	Distance     float64 `json:"distance"`
	Duration     int     `json:"duration"`
	StartTime    string  `json:"startTime"`
	Steps        int     `json:"steps"`
	HasStartTime bool    `json:"hasStartTime"`
}

type ActivitySummary struct {
	Steps                int        `json:"steps"`
	Floors               int        `json:"floors"`
	Elevation            float64    `json:"elevation"`
	CaloriesOut          int        `json:"caloriesOut"`
	ActivityCalories     int        `json:"activityCalories"`
	SedentaryMinutes     int        `json:"sedentaryMinutes"`
	LightlyActiveMinutes int        `json:"lightlyActiveMinutes"`
	FairlyActiveMinutes  int        `json:"fairlyActiveMinutes"`
	VeryActiveMinutes    int        `json:"veryActiveMinutes"`
	RestingHeartRate     int        `json:"restingHeartRate"`
	Distances            []Distance `json:"distances"`
}

type Distance struct {
	Activity string  `json:"activity"`
	Distance float64 `json:"distance"`
}

// HeartRateResponse is /1/user/-/activities/heart/date/{date}/1d.json.
type HeartRateResponse struct {
	ActivitiesHeart []HeartRateDay `json:"activities-heart"`
}

type HeartRateDay struct {
	DateTime string         `json:"dateTime"`
	Value    HeartRateValue `json:"value"`
}

type HeartRateValue struct {
	RestingHeartRate int             `json:"restingHeartRate"`
	HeartRateZones   []HeartRateZone `json:"heartRateZones"`
}

type HeartRateZone struct {
	Name        string  `json:"name"`
	Min         int     `json:"min"`
	Max         int     `json:"max"`
	Minutes     int     `json:"minutes"`
	CaloriesOut float64 `json:"caloriesOut"`
}

// SleepResponse is /1.2/user/-/sleep/date/{date}.json.
type SleepResponse struct {
	Sleep   []SleepLog   `json:"sleep"`
	Summary SleepSummary `json:"summary"`
}

type SleepLog struct {
	DateOfSleep         string      `json:"dateOfSleep"`
	Duration            int         `json:"duration"` // milliseconds
	Efficiency          int         `json:"efficiency"`
	StartTime           string      `json:"startTime"`
	EndTime             string      `json:"endTime"`
	IsMainSleep         bool        `json:"isMainSleep"`
	MinutesAsleep       int         `json:"minutesAsleep"`
	MinutesAwake        int         `json:"minutesAwake"`
	MinutesToFallAsleep int         `json:"minutesToFallAsleep"`
	MinutesAfterWakeup  int         `json:"minutesAfterWakeup"`
	TimeInBed           int         `json:"timeInBed"`
	Type                string      `json:"type"` // stages | classic
	Levels              SleepLevels `json:"levels"`
}

type SleepLevels struct {
	Summary map[string]SleepStage `json:"summary"` // keyed deep/light/rem/wake
}

type SleepStage struct {
	Count               int `json:"count"`
	Minutes             int `json:"minutes"`
	ThirtyDayAvgMinutes int `json:"thirtyDayAvgMinutes"`
}

type SleepSummary struct {
	TotalMinutesAsleep int `json:"totalMinutesAsleep"`
	TotalSleepRecords  int `json:"totalSleepRecords"`
	TotalTimeInBed     int `json:"totalTimeInBed"`
}

// WeightResponse is /1/user/-/body/log/weight/date/{date}.json.
type WeightResponse struct {
	Weight []WeightLog `json:"weight"`
}

type WeightLog struct {
	BMI    float64 `json:"bmi"`
	Date   string  `json:"date"`
	Fat    float64 `json:"fat"`
	LogID  int64   `json:"logId"`
	Source string  `json:"source"`
	Time   string  `json:"time"`
	Weight float64 `json:"weight"` // kilograms with metric Accept-Language
}

// ProfileResponse is /1/user/-/profile.json.
type ProfileResponse struct {
	User ProfileUser `json:"user"`
}

type ProfileUser struct {
	EncodedID   string `json:"encodedId"`
	DisplayName string `json:"displayName"`
	FullName    string `json:"fullName"`
	Timezone    string `json:"timezone"`
	MemberSince string `json:"memberSince"`
}

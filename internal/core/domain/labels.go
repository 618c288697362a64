package domain

import "strings"

// Labels holds the user-facing strings of one locale.
// Fields ending in Format are fmt patterns.
type Labels struct {
	Locale string

	Placeholder       string
	NoResults         string
	ResultCountFormat string
	Loading           string
	Calculating       string

	ErrorFormat           string
	ConnectionErrorFormat string
	SearchErrorFormat     string
	RequestFailedFormat   string

	NoTaxiInfo      string
	MinutesFormat   string
	FareFormat      string
	DistanceFormat  string
	UnnamedStop     string
	DefaultStopName string
	NoUpcomingBus   string

	ServiceEnded      string
	ETAAfterFormat    string
	DayWeekday        string
	DaySaturday       string
	DayHoliday        string
	StationLoadFailed string

	SelectArrivalTime  string
	InvalidArrivalTime string
	SelectDestination  string
	DefaultDestination string
	NotAvailable       string
	NotOperating       string
	MeanFormat         string
	SummaryFormat      string
	ModeTaxi           string
	ModeBus            string
	ModeSubway         string

	VoicePrompt           string
	VoiceRecognizedFormat string
	VoicePartialFormat    string
	VoiceBusy             string

	CommuteTitle string
	ArrivalLabel string
	UpLabel      string
	DownLabel    string
}

// KoreanLabels returns the default Korean strings.
func KoreanLabels() *Labels {
	return &Labels{
		Locale:            "ko",
		Placeholder:       "--",
		NoResults:         "검색 결과 없음",
		ResultCountFormat: "%d개 결과",
		Loading:           "정보 조회 중...",
		Calculating:       "계산 중...",

		ErrorFormat:           "오류: %s",
		ConnectionErrorFormat: "연결 오류: %s",
		SearchErrorFormat:     "검색 오류: %s",
		RequestFailedFormat:   "요청 실패: %s",

		NoTaxiInfo:      "택시 정보 없음",
		MinutesFormat:   "%d분",
		FareFormat:      "%s원",
		DistanceFormat:  "%.1fkm",
		UnnamedStop:     "이름 없음",
		DefaultStopName: "정류장",
		NoUpcomingBus:   "도착 예정 버스 없음",

		ServiceEnded:      "운행 종료",
		ETAAfterFormat:    "%d분후",
		DayWeekday:        "평일",
		DaySaturday:       "토요일",
		DayHoliday:        "공휴일",
		StationLoadFailed: "데이터 로딩 실패",

		SelectArrivalTime:  "도착 시간을 먼저 선택해주세요.",
		InvalidArrivalTime: "도착 시간은 HH:MM 형식이어야 합니다.",
		SelectDestination:  "목적지를 자동완성에서 선택해주세요 (좌표가 필요합니다).",
		DefaultDestination: "목적지",
		NotAvailable:       "N/A",
		NotOperating:       "운행없음",
		MeanFormat:         "(평균 %s분)",
		SummaryFormat:      "지금 %s → 도착희망 %s (남은시간: %s분)",
		ModeTaxi:           "택시",
		ModeBus:            "버스",
		ModeSubway:         "지하철",

		VoicePrompt:           "마이크로 목적지를 말해주세요...",
		VoiceRecognizedFormat: "인식: %q - 아래에서 선택하세요",
		VoicePartialFormat:    " (인식: %q)",
		VoiceBusy:             "음성 인식 중입니다",

		CommuteTitle: "도착 확률",
		ArrivalLabel: "도착 시간",
		UpLabel:      "상행",
		DownLabel:    "하행",
	}
}

// EnglishLabels returns the English strings.
func EnglishLabels() *Labels {
	return &Labels{
		Locale:            "en",
		Placeholder:       "--",
		NoResults:         "No results",
		ResultCountFormat: "%d results",
		Loading:           "Loading...",
		Calculating:       "Calculating...",

		ErrorFormat:           "Error: %s",
		ConnectionErrorFormat: "Connection error: %s",
		SearchErrorFormat:     "Search error: %s",
		RequestFailedFormat:   "Request failed: %s",

		NoTaxiInfo:      "No taxi info",
		MinutesFormat:   "%d min",
		FareFormat:      "₩%s",
		DistanceFormat:  "%.1f km",
		UnnamedStop:     "Unnamed",
		DefaultStopName: "Stop",
		NoUpcomingBus:   "No upcoming bus",

		ServiceEnded:      "Service ended",
		ETAAfterFormat:    "in %d min",
		DayWeekday:        "Weekday",
		DaySaturday:       "Saturday",
		DayHoliday:        "Holiday",
		StationLoadFailed: "Failed to load data",

		SelectArrivalTime:  "Choose an arrival time first.",
		InvalidArrivalTime: "Arrival time must be HH:MM.",
		SelectDestination:  "Pick a destination from the suggestions (coordinates required).",
		DefaultDestination: "Destination",
		NotAvailable:       "N/A",
		NotOperating:       "not operating",
		MeanFormat:         "(avg %s min)",
		SummaryFormat:      "Now %s → arrive by %s (budget: %s min)",
		ModeTaxi:           "Taxi",
		ModeBus:            "Bus",
		ModeSubway:         "Subway",

		VoicePrompt:           "Say your destination...",
		VoiceRecognizedFormat: "Heard: %q - pick below",
		VoicePartialFormat:    " (heard: %q)",
		VoiceBusy:             "Voice capture in progress",

		CommuteTitle: "On-time odds",
		ArrivalLabel: "Arrive by",
		UpLabel:      "Up",
		DownLabel:    "Down",
	}
}

// LabelsFor returns the labels for a locale tag, defaulting to Korean.
func LabelsFor(locale string) *Labels {
	if strings.HasPrefix(strings.ToLower(locale), "en") {
		return EnglishLabels()
	}
	return KoreanLabels()
}

// DayTypeLabel returns the localised label of a day code.
// Unknown codes read as weekday.
func (l *Labels) DayTypeLabel(code DayType) string {
	switch code {
	case DaySaturday:
		return l.DaySaturday
	case DayHoliday:
		return l.DayHoliday
	default:
		return l.DayWeekday
	}
}

// ModeLabel returns the localised name of a mode.
func (l *Labels) ModeLabel(m Mode) string {
	switch m {
	case ModeTaxi:
		return l.ModeTaxi
	case ModeBus:
		return l.ModeBus
	case ModeSubway:
		return l.ModeSubway
	default:
		return string(m)
	}
}

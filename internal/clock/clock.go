package clock

import "time"

// Clock 抽象化時間來源，讓階段解析可以在固定時刻下測試
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystem 回傳以 time.Now 為準的時鐘，一律取 UTC
func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

type fixedClock struct {
	now time.Time
}

// NewFixed 回傳永遠停在同一時刻的時鐘，測試用
func NewFixed(t time.Time) Clock {
	return fixedClock{now: t.UTC()}
}

func (f fixedClock) Now() time.Time {
	return f.now
}

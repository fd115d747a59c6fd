package handler

// Recorder receives handler-level measurements
type Recorder interface {
	ObserveForm(form, outcome string)
	ObserveCache(hit bool)
}

type nopRecorder struct{}

func (nopRecorder) ObserveForm(string, string) {}
func (nopRecorder) ObserveCache(bool)          {}

func recorderOrNop(r Recorder) Recorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}

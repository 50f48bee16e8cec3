package pedal

// Zero is a Reader that always reports the pedal released, useful as a
// no-op default for pads that never see a real pedal.
type Zero struct{}

func (Zero) Read() Level { return Released }

// Manual is a Reader a test drives directly by setting Level.
type Manual struct {
	Level Level
}

func (m *Manual) Read() Level { return m.Level }

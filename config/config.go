// Package config loads the pad roster and tunables table from a YAML file,
// the persistence concern spec §1 keeps external to the hit-detection core.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arlojansen/drumcore/padcfg"
)

// padDoc mirrors padcfg.PadConfig with YAML tags; it is the wire shape of
// one roster entry in the config file.
type padDoc struct {
	Channel            int     `yaml:"channel"`
	Threshold          uint16  `yaml:"threshold"`
	RetriggerCeiling   uint16  `yaml:"retrigger_ceiling"`
	Gain               float64 `yaml:"gain"`
	Note               uint8   `yaml:"note"`
	Role               string  `yaml:"role"`
	DualZone           bool    `yaml:"dual_zone"`
	SecondaryChannel   int     `yaml:"secondary_channel"`
	SecondaryThreshold uint16  `yaml:"secondary_threshold"`
	SecondaryCeiling   uint16  `yaml:"secondary_ceiling"`
	SecondaryGain      float64 `yaml:"secondary_gain"`
	SecondaryNote      uint8   `yaml:"secondary_note"`
}

// tunablesDoc mirrors padcfg.Tunables with YAML tags.
type tunablesDoc struct {
	PeakWindowMS           uint32  `yaml:"peak_window_ms"`
	SilentDebounceMS       uint32  `yaml:"silent_debounce_ms"`
	RepiqueWindowMS        uint32  `yaml:"repique_window_ms"`
	ChokeConfirmMS         uint32  `yaml:"choke_confirm_ms"`
	CrosstalkWindowMS      uint32  `yaml:"crosstalk_window_ms"`
	HighVelocity           uint8   `yaml:"high_velocity"`
	LowVelocityDiscard     uint8   `yaml:"low_velocity_discard"`
	MinVelocity            uint8   `yaml:"min_velocity"`
	MaxVelocity            uint8   `yaml:"max_velocity"`
	RetriggerMinMultiplier float64 `yaml:"retrigger_min_multiplier"`
}

// document is the top-level shape of a drumcore config file.
type document struct {
	Pads     []padDoc     `yaml:"pads"`
	Tunables *tunablesDoc `yaml:"tunables"`
}

var roleNames = map[string]padcfg.Role{
	"generic": padcfg.RoleGeneric,
	"kick":    padcfg.RoleKick,
	"hi-hat":  padcfg.RoleHiHat,
	"snare":   padcfg.RoleSnare,
	"ride":    padcfg.RoleRide,
	"crash":   padcfg.RoleCrash,
}

// Load reads and validates a YAML config file, returning the pad roster
// and tunables table it describes. A file lacking a tunables section
// falls back to padcfg.DefaultTunables().
func Load(path string) ([]padcfg.PadConfig, padcfg.Tunables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, padcfg.Tunables{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, padcfg.Tunables{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	roster := make([]padcfg.PadConfig, 0, len(doc.Pads))
	for i, p := range doc.Pads {
		cfg, err := p.toPadConfig()
		if err != nil {
			return nil, padcfg.Tunables{}, fmt.Errorf("config: pad %d: %w", i, err)
		}
		roster = append(roster, cfg)
	}

	tunables := padcfg.DefaultTunables()
	if doc.Tunables != nil {
		tunables = doc.Tunables.toTunables()
	}

	return roster, tunables, nil
}

func (p padDoc) toPadConfig() (padcfg.PadConfig, error) {
	role, ok := roleNames[p.Role]
	if p.Role != "" && !ok {
		return padcfg.PadConfig{}, fmt.Errorf("unknown role %q", p.Role)
	}

	if p.Channel < padcfg.ChanKick || p.Channel > padcfg.ChanCrashBell {
		return padcfg.PadConfig{}, fmt.Errorf("channel %d out of range [%d, %d]", p.Channel, padcfg.ChanKick, padcfg.ChanCrashBell)
	}

	if p.DualZone {
		if p.SecondaryChannel < padcfg.ChanKick || p.SecondaryChannel > padcfg.ChanCrashBell {
			return padcfg.PadConfig{}, fmt.Errorf("secondary channel %d out of range [%d, %d]", p.SecondaryChannel, padcfg.ChanKick, padcfg.ChanCrashBell)
		}
		if p.SecondaryNote == 0 {
			return padcfg.PadConfig{}, fmt.Errorf("dual-zone pad missing secondary_note")
		}
	}

	return padcfg.PadConfig{
		Channel:            p.Channel,
		Threshold:          p.Threshold,
		RetriggerCeiling:   p.RetriggerCeiling,
		Gain:               p.Gain,
		NoteNumber:         p.Note,
		IsDualZone:         p.DualZone,
		SecondaryChannel:   p.SecondaryChannel,
		SecondaryThreshold: p.SecondaryThreshold,
		SecondaryCeiling:   p.SecondaryCeiling,
		SecondaryGain:      p.SecondaryGain,
		SecondaryNote:      p.SecondaryNote,
		Role:               role,
	}, nil
}

func (t tunablesDoc) toTunables() padcfg.Tunables {
	return padcfg.Tunables{
		PeakWindowMS:           t.PeakWindowMS,
		SilentDebounceMS:       t.SilentDebounceMS,
		RepiqueWindowMS:        t.RepiqueWindowMS,
		ChokeConfirmMS:         t.ChokeConfirmMS,
		CrosstalkWindowMS:      t.CrosstalkWindowMS,
		HighVelocity:           t.HighVelocity,
		LowVelocityDiscard:     t.LowVelocityDiscard,
		MinVelocity:            t.MinVelocity,
		MaxVelocity:            t.MaxVelocity,
		RetriggerMinMultiplier: t.RetriggerMinMultiplier,
	}
}

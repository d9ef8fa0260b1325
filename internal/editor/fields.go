package editor

import (
	"slices"

	"github.com/udisondev/enemyedit/internal/model"
)

// field is one editable (or read-only) attribute of an enemy record.
type field struct {
	get func(e *model.Enemy) int
	set func(e *model.Enemy, v int) error // nil for read-only fields
}

func intField(p func(e *model.Enemy) *int) field {
	return field{
		get: func(e *model.Enemy) int { return *p(e) },
		set: func(e *model.Enemy, v int) error { *p(e) = v; return nil },
	}
}

func flagField(p func(e *model.Enemy) *bool) field {
	return field{
		get: func(e *model.Enemy) int {
			if *p(e) {
				return 1
			}
			return 0
		},
		set: func(e *model.Enemy, v int) error { *p(e) = v != 0; return nil },
	}
}

func readOnly(get func(e *model.Enemy) int) field {
	return field{get: get}
}

var fields = map[string]field{
	"level":      intField(func(e *model.Enemy) *int { return &e.Level }),
	"experience": intField(func(e *model.Enemy) *int { return &e.Experience }),
	"hp":         intField(func(e *model.Enemy) *int { return &e.HP }),
	"str":        intField(func(e *model.Enemy) *int { return &e.STR }),
	"tec":        intField(func(e *model.Enemy) *int { return &e.TEC }),
	"vit":        intField(func(e *model.Enemy) *int { return &e.VIT }),
	"wis":        intField(func(e *model.Enemy) *int { return &e.WIS }),
	"agi":        intField(func(e *model.Enemy) *int { return &e.AGI }),
	"luc":        intField(func(e *model.Enemy) *int { return &e.LUC }),

	"base_accuracy": readOnly(func(e *model.Enemy) int { return e.BaseAccuracy() }),

	"damage_type.cut":        flagField(func(e *model.Enemy) *bool { return &e.DamageType.Cut }),
	"damage_type.bash":       flagField(func(e *model.Enemy) *bool { return &e.DamageType.Bash }),
	"damage_type.stab":       flagField(func(e *model.Enemy) *bool { return &e.DamageType.Stab }),
	"damage_type.fire":       flagField(func(e *model.Enemy) *bool { return &e.DamageType.Fire }),
	"damage_type.ice":        flagField(func(e *model.Enemy) *bool { return &e.DamageType.Ice }),
	"damage_type.volt":       flagField(func(e *model.Enemy) *bool { return &e.DamageType.Volt }),
	"damage_type.almighty":   flagField(func(e *model.Enemy) *bool { return &e.DamageType.Almighty }),
	"damage_type.no_penalty": flagField(func(e *model.Enemy) *bool { return &e.DamageType.NoPenalty }),

	"execution_immunity": flagField(func(e *model.Enemy) *bool { return &e.Flags.ExecutionImmunity }),

	"vuln.cut":      intField(func(e *model.Enemy) *int { return &e.DamageVulnerabilities.Cut }),
	"vuln.stab":     intField(func(e *model.Enemy) *int { return &e.DamageVulnerabilities.Stab }),
	"vuln.bash":     intField(func(e *model.Enemy) *int { return &e.DamageVulnerabilities.Bash }),
	"vuln.fire":     intField(func(e *model.Enemy) *int { return &e.DamageVulnerabilities.Fire }),
	"vuln.ice":      intField(func(e *model.Enemy) *int { return &e.DamageVulnerabilities.Ice }),
	"vuln.volt":     intField(func(e *model.Enemy) *int { return &e.DamageVulnerabilities.Volt }),
	"vuln.almighty": intField(func(e *model.Enemy) *int { return &e.DamageVulnerabilities.Almighty }),

	"disable.blind":         intField(func(e *model.Enemy) *int { return &e.DisableVulnerabilities.Blind }),
	"disable.paralysis":     intField(func(e *model.Enemy) *int { return &e.DisableVulnerabilities.Paralysis }),
	"disable.berserk":       intField(func(e *model.Enemy) *int { return &e.DisableVulnerabilities.Berserk }),
	"disable.plague":        intField(func(e *model.Enemy) *int { return &e.DisableVulnerabilities.Plague }),
	"disable.sleep":         intField(func(e *model.Enemy) *int { return &e.DisableVulnerabilities.Sleep }),
	"disable.poison":        intField(func(e *model.Enemy) *int { return &e.DisableVulnerabilities.Poison }),
	"disable.curse":         intField(func(e *model.Enemy) *int { return &e.DisableVulnerabilities.Curse }),
	"disable.petrification": intField(func(e *model.Enemy) *int { return &e.DisableVulnerabilities.Petrification }),
	"disable.stunned":       intField(func(e *model.Enemy) *int { return &e.DisableVulnerabilities.Stunned }),
	"disable.head_bind":     intField(func(e *model.Enemy) *int { return &e.DisableVulnerabilities.HeadBind }),
	"disable.arm_bind":      intField(func(e *model.Enemy) *int { return &e.DisableVulnerabilities.ArmBind }),
	"disable.leg_bind":      intField(func(e *model.Enemy) *int { return &e.DisableVulnerabilities.LegBind }),
	"disable.instant_death": {
		get: func(e *model.Enemy) int { return e.DisableVulnerabilities.InstantDeath() },
		set: func(e *model.Enemy, v int) error { e.DisableVulnerabilities.SetInstantDeath(v); return nil },
	},

	"first_drop.item":  readOnly(func(e *model.Enemy) int { return e.FirstDrop().Index() }),
	"second_drop.item": readOnly(func(e *model.Enemy) int { return e.SecondDrop().Index() }),
	"cond_drop.item":   readOnly(func(e *model.Enemy) int { return e.ConditionalDrop().Index() }),

	"first_drop.chance": {
		get: func(e *model.Enemy) int { return e.FirstDrop().Chance() },
		set: func(e *model.Enemy, v int) error { e.FirstDrop().SetChance(v); return nil },
	},
	"second_drop.chance": {
		get: func(e *model.Enemy) int { return e.SecondDrop().Chance() },
		set: func(e *model.Enemy, v int) error { e.SecondDrop().SetChance(v); return nil },
	},
	"cond_drop.chance": {
		get: func(e *model.Enemy) int { return e.ConditionalDrop().Chance() },
		set: func(e *model.Enemy, v int) error { e.ConditionalDrop().SetChance(v); return nil },
	},
	"cond_drop.condition": {
		get: func(e *model.Enemy) int { return int(e.ConditionalDrop().Condition().Code()) },
		set: func(e *model.Enemy, v int) error {
			if v == 0 {
				// снять условие: байт 0 в таблице
				e.ConditionalDrop().SetCondition(0)
				return nil
			}
			if v < 0 || v > 0xFF {
				return model.ErrUnknownCondition
			}
			c, err := model.ParseConditionalDropFlags(uint8(v))
			if err != nil {
				return err
			}
			e.ConditionalDrop().SetCondition(c)
			return nil
		},
	},
}

// Fields returns the names accepted by Session.Get, sorted.
func Fields() []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Writable reports whether Session.Set accepts field.
func Writable(name string) bool {
	f, ok := fields[name]
	return ok && f.set != nil
}

package playbook

// Standard plays offered on the selection panel.
const (
	RunLeft      ID = "run_left"
	RunRight     ID = "run_right"
	PassShort    ID = "pass_short"
	PassLong     ID = "pass_long"
	DefenseBlitz ID = "defense_blitz"
	DefenseZone  ID = "defense_zone"
)

func init() {
	Register(Play{ID: RunLeft, Name: "Run Left", Side: Offense})
	Register(Play{ID: RunRight, Name: "Run Right", Side: Offense})
	Register(Play{ID: PassShort, Name: "Pass - Short", Side: Offense})
	Register(Play{ID: PassLong, Name: "Pass - Long", Side: Offense})
	Register(Play{ID: DefenseBlitz, Name: "Blitz Defense", Side: Defense})
	Register(Play{ID: DefenseZone, Name: "Zone Coverage", Side: Defense})
}

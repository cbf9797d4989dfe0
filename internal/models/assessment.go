package models

// Answers are the self-reported movement-pain indicators of the assessment.
type Answers struct {
	ShoulderPainOverhead bool `json:"shoulderPainOverhead"`
	SquatBackRounds      bool `json:"squatBackRounds"`
	KneeValgus           bool `json:"kneeValgus"`
	HipAsymmetry         bool `json:"hipAsymmetry"`
}

// Checked counts the flags that are set.
func (a Answers) Checked() int {
	n := 0
	for _, v := range []bool{a.ShoulderPainOverhead, a.SquatBackRounds, a.KneeValgus, a.HipAsymmetry} {
		if v {
			n++
		}
	}
	return n
}

type MachineKey string

const (
	MachineLegPress     MachineKey = "legPress"
	MachineLegExtension MachineKey = "legExtension"
	MachineLegCurl      MachineKey = "legCurl"
	MachinePecDeck      MachineKey = "pecDeck"
	MachineSeatedRow    MachineKey = "seatedRow"
	MachineLatPulldown  MachineKey = "latPulldown"
	MachineCable        MachineKey = "cable"
	MachineDumbbell     MachineKey = "dumbbell"
	MachineBarbell      MachineKey = "barbell"
)

// Exercise is a static catalog entry, never user-created.
type Exercise struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Machine MachineKey `json:"machine"`
	Tags    []string   `json:"tags,omitempty"`
}

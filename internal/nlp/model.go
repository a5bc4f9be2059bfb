package nlp

// Command is the intent the model extracted from a free-text staff
// instruction.
type Command struct {
	Action  string  `json:"action"`
	Item    string  `json:"item"`
	Type    string  `json:"type"`
	Details Details `json:"details"`
}

// Details carries the optional attributes the model picked up. Fields
// not mentioned in the command stay zero.
type Details struct {
	Price       *float64 `json:"price,omitempty"`
	Description string   `json:"description,omitempty"`
	Ingredients string   `json:"ingredients,omitempty"`
	Type        string   `json:"type,omitempty"`
}

// Result is what a dispatched action hands back.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

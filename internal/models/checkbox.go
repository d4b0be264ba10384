package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Checkbox adalah nilai boolean dari form HTML.
// Checkbox yang dicentang mengirim "on", yang tidak dicentang tidak mengirim apa-apa.
type Checkbox bool

// UnmarshalParam dipakai binding form gin
func (c *Checkbox) UnmarshalParam(param string) error {
	switch strings.ToLower(strings.TrimSpace(param)) {
	case "on", "yes":
		*c = true
		return nil
	case "", "off", "no":
		*c = false
		return nil
	}
	b, err := strconv.ParseBool(param)
	if err != nil {
		return fmt.Errorf("nilai checkbox tidak valid: %q", param)
	}
	*c = Checkbox(b)
	return nil
}

// UnmarshalJSON menerima true/false maupun string seperti "on"
func (c *Checkbox) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*c = Checkbox(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("nilai checkbox tidak valid: %s", data)
	}
	return c.UnmarshalParam(s)
}

package verdict

import (
	"encoding/xml"
	"fmt"
)

// Report is a serializable snapshot of a Result. Expected and received
// values are rendered with Describe so every codec can carry them.
type Report struct {
	XMLName xml.Name `json:"-" yaml:"-" msgpack:"-" bson:"-" xml:"report"`
	Valid   bool     `json:"valid" yaml:"valid" msgpack:"valid" bson:"valid" xml:"valid,attr"`
	Errors  []Entry  `json:"errors,omitempty" yaml:"errors,omitempty" msgpack:"errors,omitempty" bson:"errors,omitempty" xml:"error"`
}

// Entry is the serializable form of one CheckErr.
type Entry struct {
	Kind     string  `json:"kind" yaml:"kind" msgpack:"kind" bson:"kind" xml:"kind"`
	Expected string  `json:"expected" yaml:"expected" msgpack:"expected" bson:"expected" xml:"expected"`
	Received string  `json:"received" yaml:"received" msgpack:"received" bson:"received" xml:"received"`
	Property string  `json:"property,omitempty" yaml:"property,omitempty" msgpack:"property,omitempty" bson:"property,omitempty" xml:"property,omitempty"`
	Index    *int    `json:"index,omitempty" yaml:"index,omitempty" msgpack:"index,omitempty" bson:"index,omitempty" xml:"index,omitempty"`
	Errs     []Entry `json:"errs,omitempty" yaml:"errs,omitempty" msgpack:"errs,omitempty" bson:"errs,omitempty" xml:"error"`
}

// Entry renders e and its children.
func (e *CheckErr) Entry() Entry {
	entry := Entry{
		Kind:     e.kind.Error(),
		Expected: Describe(e.expected),
		Received: Describe(e.received),
	}
	if key, ok := e.Property(); ok {
		entry.Property = key
	}
	if i, ok := e.Index(); ok {
		entry.Index = &i
	}
	for _, child := range e.errs {
		entry.Errs = append(entry.Errs, child.Entry())
	}
	return entry
}

// Report renders the result.
func (r *Result) Report() Report {
	report := Report{Valid: r.IsValid()}
	for _, ce := range r.errs {
		report.Errors = append(report.Errors, ce.Entry())
	}
	return report
}

// Encode marshals the result's report with c.
func (r *Result) Encode(c Codec) ([]byte, error) {
	data, err := c.Marshal(r.Report())
	if err != nil {
		return nil, newCodecError(ErrMarshal, c.ContentType(), err)
	}
	return data, nil
}

// DecodeReport unmarshals a report produced by Result.Encode.
func DecodeReport(c Codec, data []byte) (Report, error) {
	var report Report
	if err := c.Unmarshal(data, &report); err != nil {
		return Report{}, newCodecError(ErrUnmarshal, c.ContentType(), err)
	}
	report.XMLName = xml.Name{}
	return report, nil
}

// String renders the entry on one line, in the same shape as CheckErr.Error.
func (e Entry) String() string {
	loc := ""
	switch {
	case e.Property != "" && e.Index != nil:
		loc = fmt.Sprintf("%s[%d]: ", e.Property, *e.Index)
	case e.Property != "":
		loc = e.Property + ": "
	case e.Index != nil:
		loc = fmt.Sprintf("[%d]: ", *e.Index)
	}
	if len(e.Errs) == 0 {
		return fmt.Sprintf("%s%s: expected %s, received %s", loc, e.Kind, e.Expected, e.Received)
	}
	s := loc + e.Kind + " ("
	for i, child := range e.Errs {
		if i > 0 {
			s += "; "
		}
		s += child.String()
	}
	return s + ")"
}

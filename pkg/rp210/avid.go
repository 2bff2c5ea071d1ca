package rp210

// AvidMappings are proprietary Avid identifiers that appear as dark
// metadata in Avid-authored MXF files. The keys are the short hex fragments
// Avid uses in its primer packs; Inject pads them to full UL length.
//
// Descriptions are empty on purpose: Avid does not publish definitions for
// these fields, only their observed wire types.
var AvidMappings = map[string]Entry{
	"8001": {Type: "StrongReferenceArray", Name: "Avid Metadata References"},
	"8002": {Type: "UInt32", Name: "Avid First Frame Offset"},
	"8003": {Type: "StrongReferenceArray", Name: "Avid Attributes"},
	"8004": {Type: "UInt32", Name: "Avid End Frame Offset"},
	"8005": {Type: "UTF-16 char string", Name: "Avid Tagged Value Name"},
	"8006": {Type: "UTF-16 char string", Name: "Avid Tagged Value String"},
	"8007": {Type: "Int32", Name: "Avid Tagged Value Int"},
}

// InjectAvid layers the Avid vendor mappings atop the base registry.
func (r *Registry) InjectAvid() {
	r.Inject(AvidMappings)
}

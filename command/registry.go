package command

import "fmt"

var kindToName = map[Kind]string{
	KindSetVelocity:          "SetVelocity",
	KindSetPosition:          "SetPosition",
	KindStartSharpening:      "StartSharpening",
	KindCancelSharpening:     "CancelSharpening",
	KindSetHeatLevel:         "SetHeatLevel",
	KindPlaceFoodOnBurner:    "PlaceFoodOnBurner",
	KindRemoveFoodFromBurner: "RemoveFoodFromBurner",
	KindStartChopping:        "StartChopping",
	KindCancelChopping:       "CancelChopping",
}

var nameToKind = func() map[string]Kind {
	m := make(map[string]Kind, len(kindToName))
	for k, name := range kindToName {
		m[name] = k
	}
	return m
}()

// KindName returns the string name for a command kind
func KindName(k Kind) string {
	if name, ok := kindToName[k]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", int(k))
}

// KindByName returns the command kind registered under name
func KindByName(name string) (Kind, bool) {
	k, ok := nameToKind[name]
	return k, ok
}

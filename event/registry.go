package event

import "fmt"

var (
	nameToType   = make(map[string]EventType)
	typeToName   = make(map[EventType]string)
	registryInit = false
)

// RegisterType maps a string name to an EventType for logs and traces
func RegisterType(name string, et EventType) {
	nameToType[name] = et
	typeToName[et] = name
}

// TypeByName returns the EventType registered under name
func TypeByName(name string) (EventType, bool) {
	et, ok := nameToType[name]
	return et, ok
}

// TypeName returns the string name for an EventType
func TypeName(et EventType) string {
	if name, ok := typeToName[et]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", int(et))
}

// InitRegistry populates the registry with all simulation events
// Safe to call more than once; later calls are no-ops
func InitRegistry() {
	if registryInit {
		return
	}
	registryInit = true

	// Knife events
	RegisterType("SharpeningStarted", EventSharpeningStarted)
	RegisterType("SharpeningProgress", EventSharpeningProgress)
	RegisterType("KnifeSharpened", EventKnifeSharpened)
	RegisterType("SharpeningCancelled", EventSharpeningCancelled)
	RegisterType("KnifeDegraded", EventKnifeDegraded)

	// Cooking events
	RegisterType("HeatLevelChanged", EventHeatLevelChanged)
	RegisterType("FoodPlacedOnHeat", EventFoodPlacedOnHeat)
	RegisterType("FoodRemovedFromHeat", EventFoodRemovedFromHeat)
	RegisterType("CookingProgress", EventCookingProgress)
	RegisterType("BurningStarted", EventBurningStarted)
	RegisterType("FoodCooked", EventFoodCooked)

	// Chopping events
	RegisterType("ChoppingStarted", EventChoppingStarted)
	RegisterType("ChoppingProgress", EventChoppingProgress)
	RegisterType("ChoppingCancelled", EventChoppingCancelled)
	RegisterType("IngredientChopped", EventIngredientChopped)
	RegisterType("IngredientFullyPrepared", EventIngredientFullyPrepared)
}

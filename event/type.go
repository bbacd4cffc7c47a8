package event

// EventType identifies the kind of simulation event
type EventType int

// === Knife Events ===

const (
	// EventSharpeningStarted signals a sharpening operation began
	// Trigger: SharpeningSystem on a StartSharpening command
	// Consumer: presentation layer | Payload: *SharpeningStartedPayload
	EventSharpeningStarted EventType = iota + 100

	// EventSharpeningProgress reports sharpening advancement each tick
	// Trigger: SharpeningSystem per tick while a knife is sharpening
	// Consumer: presentation layer | Payload: *SharpeningProgressPayload
	EventSharpeningProgress

	// EventKnifeSharpened signals sharpening completed at max level
	// Trigger: SharpeningSystem when elapsed reaches duration
	// Consumer: presentation layer | Payload: *KnifeSharpenedPayload
	EventKnifeSharpened

	// EventSharpeningCancelled signals sharpening stopped early
	// Trigger: SharpeningSystem on a CancelSharpening command
	// Consumer: presentation layer | Payload: *SharpeningCancelledPayload
	EventSharpeningCancelled

	// EventKnifeDegraded signals a knife lost sharpness from use
	// Trigger: ChoppingSystem when a chop completes
	// Consumer: presentation layer | Payload: *KnifeDegradedPayload
	EventKnifeDegraded
)

// === Cooking Events ===

const (
	// EventHeatLevelChanged signals a burner heat adjustment
	// Trigger: CookingSystem on a SetHeatLevel command, after snapping
	// Consumer: presentation layer | Payload: *HeatLevelChangedPayload
	EventHeatLevelChanged EventType = iota + 200

	// EventFoodPlacedOnHeat signals food landed on a burner
	// Trigger: CookingSystem on a PlaceFoodOnBurner command
	// Consumer: presentation layer | Payload: *FoodPlacedOnHeatPayload
	EventFoodPlacedOnHeat

	// EventFoodRemovedFromHeat signals food left its burner to cool
	// Trigger: CookingSystem on a RemoveFoodFromBurner command
	// Consumer: presentation layer | Payload: *FoodRemovedFromHeatPayload
	EventFoodRemovedFromHeat

	// EventCookingProgress reports doneness each tick for tracked food
	// Trigger: CookingSystem per tick while CookingProgress is present
	// Consumer: presentation layer | Payload: *CookingProgressPayload
	EventCookingProgress

	// EventBurningStarted signals doneness pushed past the burn threshold
	// Trigger: CookingSystem when doneness first exceeds 1.0
	// Consumer: presentation layer | Payload: *BurningStartedPayload
	EventBurningStarted

	// EventFoodCooked signals doneness reached the cooked threshold
	// Trigger: CookingSystem when doneness crosses 1.0 upward
	// Consumer: presentation layer | Payload: *FoodCookedPayload
	EventFoodCooked
)

// === Chopping Events ===

const (
	// EventChoppingStarted signals a chop began on an ingredient
	// Trigger: ChoppingSystem on a StartChopping command
	// Consumer: presentation layer | Payload: *ChoppingStartedPayload
	EventChoppingStarted EventType = iota + 300

	// EventChoppingProgress reports chop advancement each tick
	// Trigger: ChoppingSystem per tick while a chop is in flight
	// Consumer: presentation layer | Payload: *ChoppingProgressPayload
	EventChoppingProgress

	// EventChoppingCancelled signals a chop stopped without credit
	// Trigger: ChoppingSystem on a CancelChopping command
	// Consumer: presentation layer | Payload: *ChoppingCancelledPayload
	EventChoppingCancelled

	// EventIngredientChopped signals one chop completed
	// Trigger: ChoppingSystem when elapsed reaches the chop duration
	// Consumer: presentation layer | Payload: *IngredientChoppedPayload
	EventIngredientChopped

	// EventIngredientFullyPrepared signals the final chop completed
	// Trigger: ChoppingSystem when chops reach the required count
	// Consumer: presentation layer | Payload: *IngredientFullyPreparedPayload
	EventIngredientFullyPrepared
)

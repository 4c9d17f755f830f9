// File: utils/constants.go
package utils

import "time"

// AvailabilityCachePrefix is the prefix used for cached availability responses.
const AvailabilityCachePrefix = "availability:"

// AvailabilityCacheTTL keeps availability responses fresh enough for the
// scheduling UI while shielding Firestore from polling.
const AvailabilityCacheTTL = 30 * time.Second

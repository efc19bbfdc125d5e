package constants

import "time"

// Redis key formats
const (
	// Billing service
	KeyFeeConfig = "billing:fee_config" // cached FeeConfig singleton, JSON

	// Fleet service
	KeyDriverGeo       = "fleet:drivers:geo"    // geo set of live driver positions
	KeyDriverPosition  = "fleet:driver:pos:%s"  // Format: fleet:driver:pos:{driver_id}
	KeyDriverHeartbeat = "fleet:driver:seen:%s" // Format: fleet:driver:seen:{driver_id}

	// Rate limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{ip}
)

// Cache lifetimes
const (
	FeeConfigTTL      = 5 * time.Minute
	DriverPositionTTL = 2 * time.Minute
)

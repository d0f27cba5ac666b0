package constants

import "time"

// lightify native colour temperature range (kelvin)
const TempMinKelvin = 2000
const TempMaxKelvin = 6500

// host colour temperature range
const TempMinHost = 154
const TempMaxHost = 500

const LuminanceMax = 100
const BrightnessMax = 255
const BrightnessPerLuminance = 2.55

const MinTimeBetweenScans = 10 * time.Second
const MinTimeBetweenForcedScans = 100 * time.Millisecond

const DefaultBridgePort = 4000
const DefaultBridgeTimeout = 5 * time.Second
const DefaultPollInterval = 30 * time.Second

const EffectRandom = "random"
const EffectNone = "none"

// sse stream the hub publishes light states on
const LightStateStream = "lights"

package taxonomy

// Numeric id ranges per namespace. Definitions below must stay inside
// their range; the package tests enforce this so codes cannot drift
// across namespace boundaries ad hoc.
const (
	CoreRangeStart        uint16 = 1
	CoreRangeEnd          uint16 = 99
	ConfigRangeStart      uint16 = 100
	ConfigRangeEnd        uint16 = 199
	DeceptionRangeStart   uint16 = 200
	DeceptionRangeEnd     uint16 = 299
	TelemetryRangeStart   uint16 = 300
	TelemetryRangeEnd     uint16 = 399
	CorrelationRangeStart uint16 = 400
	CorrelationRangeEnd   uint16 = 499
	ResponseRangeStart    uint16 = 500
	ResponseRangeEnd      uint16 = 599
	LoggingRangeStart     uint16 = 600
	LoggingRangeEnd       uint16 = 699
	PlatformRangeStart    uint16 = 700
	PlatformRangeEnd      uint16 = 799
	IORangeStart          uint16 = 800
	IORangeEnd            uint16 = 899
)

// CORE (001-099): fundamental system health. Mostly transient; the agent
// retries or degrades before alerting.
var (
	CoreInitFailed        = MustNew(Core, 1, CatSystem, MustImpactScore(600), true)
	CoreShutdownFailed    = MustNew(Core, 2, CatSystem, MustImpactScore(600), false)
	CorePanicRecovery     = MustNew(Core, 3, CatSystem, MustImpactScore(700), false)
	CoreInvalidState      = MustNew(Core, 4, CatSystem, MustImpactScore(600), false)
	CoreMemoryAllocFailed = MustNew(Core, 5, CatSystem, MustImpactScore(700), true)
	CoreThreadSpawnFailed = MustNew(Core, 6, CatSystem, MustImpactScore(600), true)
	CoreDependencyMissing = MustNew(Core, 10, CatSystem, MustImpactScore(600), false)
	CoreResourceInit      = MustNew(Core, 12, CatSystem, MustImpactScore(600), true)
	CoreQueueOverflow     = MustNew(Core, 17, CatSystem, MustImpactScore(600), true)
	CoreHealthCheckFailed = MustNew(Core, 22, CatSystem, MustImpactScore(600), true)
)

// CFG (100-199): configuration and validation. Permanent until an operator
// fixes the input; no automatic retry.
var (
	CfgParseFailed       = MustNew(Config, 100, CatConfiguration, MustImpactScore(200), false)
	CfgValidationFailed  = MustNew(Config, 101, CatConfiguration, MustImpactScore(200), false)
	CfgMissingRequired   = MustNew(Config, 102, CatConfiguration, MustImpactScore(200), false)
	CfgInvalidValue      = MustNew(Config, 103, CatConfiguration, MustImpactScore(200), false)
	CfgPermissionDenied  = MustNew(Config, 105, CatConfiguration, MustImpactScore(200), false)
	CfgSecurityViolation = MustNew(Config, 107, CatConfiguration, MustImpactScore(200), false)
	CfgLoadFailed        = MustNew(Config, 108, CatConfiguration, MustImpactScore(200), true)
	CfgWatcherInitFailed = MustNew(Config, 124, CatConfiguration, MustImpactScore(200), true)
	CfgReloadFailed      = MustNew(Config, 125, CatConfiguration, MustImpactScore(200), true)
)

// DCP (200-299): the deception subsystem, split in two blocks.
//
// Deployment block: technical failures of the stage itself. Retry the
// deployment; the persona is intact.
var (
	DcpDeployFailed       = MustNew(Deception, 200, CatDeployment, MustImpactScore(300), true)
	DcpArtifactCreate     = MustNew(Deception, 201, CatDeployment, MustImpactScore(300), true)
	DcpArtifactWrite      = MustNew(Deception, 202, CatDeployment, MustImpactScore(300), true)
	DcpCleanupFailed      = MustNew(Deception, 203, CatDeployment, MustImpactScore(300), true)
	DcpTriggerFailed      = MustNew(Deception, 205, CatDeployment, MustImpactScore(300), true)
	DcpHoneypotInitFailed = MustNew(Deception, 208, CatDeployment, MustImpactScore(300), true)
	DcpDecoyLaunchFailed  = MustNew(Deception, 213, CatDeployment, MustImpactScore(300), true)
	DcpIntegrityCheck     = MustNew(Deception, 224, CatDeployment, MustImpactScore(300), false)
)

// Narrative block: semantic failures. The infrastructure is fine but the
// story is breaking. A narrative break means the adversary knows; the
// persona must be hard-reset, never retried in place.
var (
	DcpNarrativeDesync     = MustNew(Deception, 231, CatDeception, MustImpactScore(500), false)
	DcpNarrativeBreak      = MustNew(Deception, 232, CatDeception, MustImpactScore(800), false)
	DcpBelievabilityLow    = MustNew(Deception, 233, CatDeception, MustImpactScore(500), false)
	DcpAdversaryAdaptation = MustNew(Deception, 234, CatDeception, MustImpactScore(800), false)
	DcpStateViolation      = MustNew(Deception, 235, CatDeception, MustImpactScore(500), false)
	DcpTemporalInconsistency = MustNew(Deception, 236, CatDeception, MustImpactScore(500), false)
	DcpCausalityBreach       = MustNew(Deception, 237, CatDeception, MustImpactScore(500), false)
)

// TEL (300-399): telemetry and observability, including the contested
// cases where an adversary is blinding the sensors.
var (
	TelInitFailed        = MustNew(Telemetry, 300, CatMonitoring, MustImpactScore(400), true)
	TelWatchFailed       = MustNew(Telemetry, 301, CatMonitoring, MustImpactScore(400), true)
	TelEventLost         = MustNew(Telemetry, 302, CatMonitoring, MustImpactScore(400), false)
	TelChannelClosed     = MustNew(Telemetry, 303, CatMonitoring, MustImpactScore(400), false)
	TelExportFailed      = MustNew(Telemetry, 306, CatMonitoring, MustImpactScore(400), true)
	TelBufferOverflow    = MustNew(Telemetry, 310, CatMonitoring, MustImpactScore(400), false)
	TelBackpressure      = MustNew(Telemetry, 324, CatMonitoring, MustImpactScore(400), true)
	TelHeartbeatFailed   = MustNew(Telemetry, 330, CatMonitoring, MustImpactScore(400), true)
	TelEvasionDetected   = MustNew(Telemetry, 331, CatMonitoring, MustImpactScore(800), false)
	TelSensorBypass      = MustNew(Telemetry, 332, CatMonitoring, MustImpactScore(700), false)
	TelObservabilityGap  = MustNew(Telemetry, 333, CatMonitoring, MustImpactScore(700), false)
)

// COR (400-499): correlation and analysis.
var (
	CorRuleEvalFailed        = MustNew(Correlation, 400, CatAnalysis, MustImpactScore(300), true)
	CorBufferOverflow        = MustNew(Correlation, 401, CatAnalysis, MustImpactScore(300), false)
	CorInvalidScore          = MustNew(Correlation, 402, CatAnalysis, MustImpactScore(300), false)
	CorWindowExpired         = MustNew(Correlation, 403, CatAnalysis, MustImpactScore(300), false)
	CorPatternMatchFailed    = MustNew(Correlation, 405, CatAnalysis, MustImpactScore(300), true)
	CorModelDrift            = MustNew(Correlation, 432, CatAnalysis, MustImpactScore(300), false)
	CorHypothesisInvalidated = MustNew(Correlation, 433, CatAnalysis, MustImpactScore(550), false)
	CorActorConflict         = MustNew(Correlation, 434, CatAnalysis, MustImpactScore(300), false)
)

// RSP (500-599): response and action, including adversary-shaped leakage
// where the response itself risks exposing the emulation.
var (
	RspExecFailed              = MustNew(Response, 500, CatResponse, MustImpactScore(300), true)
	RspTimeout                 = MustNew(Response, 501, CatResponse, MustImpactScore(300), true)
	RspInvalidAction           = MustNew(Response, 502, CatResponse, MustImpactScore(300), false)
	RspRateLimited             = MustNew(Response, 503, CatResponse, MustImpactScore(300), true)
	RspHandlerNotFound         = MustNew(Response, 504, CatResponse, MustImpactScore(300), false)
	RspTimingAnomaly           = MustNew(Response, 531, CatResponse, MustImpactScore(500), false)
	RspEntropyLow              = MustNew(Response, 532, CatResponse, MustImpactScore(500), false)
	RspBehavioralInconsistency = MustNew(Response, 533, CatResponse, MustImpactScore(500), false)
)

// LOG (600-699): audit and logging. Failures fall back to stderr.
var (
	LogWriteFailed   = MustNew(Logging, 600, CatAudit, MustImpactScore(200), true)
	LogRotateFailed  = MustNew(Logging, 601, CatAudit, MustImpactScore(200), true)
	LogBufferFull    = MustNew(Logging, 602, CatAudit, MustImpactScore(200), false)
	LogSerialization = MustNew(Logging, 603, CatAudit, MustImpactScore(200), false)
	LogInitFailed    = MustNew(Logging, 604, CatAudit, MustImpactScore(200), true)
	LogFlushFailed   = MustNew(Logging, 605, CatAudit, MustImpactScore(200), true)
	LogQueueOverflow = MustNew(Logging, 623, CatAudit, MustImpactScore(200), false)
)

// PLT (700-799): platform and OS.
var (
	PltUnsupported        = MustNew(Platform, 700, CatSystem, MustImpactScore(400), false)
	PltSyscallFailed      = MustNew(Platform, 701, CatSystem, MustImpactScore(400), true)
	PltPermissionDenied   = MustNew(Platform, 702, CatSystem, MustImpactScore(400), false)
	PltResourceExhausted  = MustNew(Platform, 703, CatSystem, MustImpactScore(400), true)
	PltEnvDetectFailed    = MustNew(Platform, 708, CatSystem, MustImpactScore(400), true)
	PltProcessSpawnFailed = MustNew(Platform, 714, CatSystem, MustImpactScore(400), true)
	PltResourceLimit      = MustNew(Platform, 726, CatSystem, MustImpactScore(400), false)
)

// IO (800-899): input/output and networking. The transient network class
// retries with backoff; filesystem shape errors do not.
var (
	IOReadFailed        = MustNew(IO, 800, CatIO, MustImpactScore(200), true)
	IOWriteFailed       = MustNew(IO, 801, CatIO, MustImpactScore(200), true)
	IONetworkError      = MustNew(IO, 802, CatIO, MustImpactScore(200), true)
	IOTimeout           = MustNew(IO, 803, CatIO, MustImpactScore(200), true)
	IONotFound          = MustNew(IO, 804, CatIO, MustImpactScore(200), false)
	IOMetadataFailed    = MustNew(IO, 805, CatIO, MustImpactScore(200), true)
	IOOpenFailed        = MustNew(IO, 806, CatIO, MustImpactScore(200), true)
	IOPermissionDenied  = MustNew(IO, 810, CatIO, MustImpactScore(200), false)
	IOInterrupted       = MustNew(IO, 811, CatIO, MustImpactScore(200), true)
	IOInvalidInput      = MustNew(IO, 813, CatIO, MustImpactScore(200), false)
	IOBrokenPipe        = MustNew(IO, 814, CatIO, MustImpactScore(200), true)
	IOConnectionReset   = MustNew(IO, 815, CatIO, MustImpactScore(200), true)
	IOConnectionRefused = MustNew(IO, 816, CatIO, MustImpactScore(200), true)
	IOAlreadyExists     = MustNew(IO, 823, CatIO, MustImpactScore(200), false)
	IOIsDirectory       = MustNew(IO, 824, CatIO, MustImpactScore(200), false)
)

// Range returns the permitted id range for a namespace. It backs the
// governance tests and the registry's range checks for loaded codes.
func Range(ns *Namespace) (start, end uint16, ok bool) {
	switch ns {
	case Core:
		return CoreRangeStart, CoreRangeEnd, true
	case Config:
		return ConfigRangeStart, ConfigRangeEnd, true
	case Deception:
		return DeceptionRangeStart, DeceptionRangeEnd, true
	case Telemetry:
		return TelemetryRangeStart, TelemetryRangeEnd, true
	case Correlation:
		return CorrelationRangeStart, CorrelationRangeEnd, true
	case Response:
		return ResponseRangeStart, ResponseRangeEnd, true
	case Logging:
		return LoggingRangeStart, LoggingRangeEnd, true
	case Platform:
		return PlatformRangeStart, PlatformRangeEnd, true
	case IO:
		return IORangeStart, IORangeEnd, true
	}
	return 0, 0, false
}

// Defined returns every predefined code, grouped for iteration by the
// governance tests and the codes CLI listing.
func Defined() []*Code {
	return []*Code{
		CoreInitFailed, CoreShutdownFailed, CorePanicRecovery, CoreInvalidState,
		CoreMemoryAllocFailed, CoreThreadSpawnFailed, CoreDependencyMissing,
		CoreResourceInit, CoreQueueOverflow, CoreHealthCheckFailed,

		CfgParseFailed, CfgValidationFailed, CfgMissingRequired, CfgInvalidValue,
		CfgPermissionDenied, CfgSecurityViolation, CfgLoadFailed,
		CfgWatcherInitFailed, CfgReloadFailed,

		DcpDeployFailed, DcpArtifactCreate, DcpArtifactWrite, DcpCleanupFailed,
		DcpTriggerFailed, DcpHoneypotInitFailed, DcpDecoyLaunchFailed,
		DcpIntegrityCheck,

		DcpNarrativeDesync, DcpNarrativeBreak, DcpBelievabilityLow,
		DcpAdversaryAdaptation, DcpStateViolation, DcpTemporalInconsistency,
		DcpCausalityBreach,

		TelInitFailed, TelWatchFailed, TelEventLost, TelChannelClosed,
		TelExportFailed, TelBufferOverflow, TelBackpressure, TelHeartbeatFailed,
		TelEvasionDetected, TelSensorBypass, TelObservabilityGap,

		CorRuleEvalFailed, CorBufferOverflow, CorInvalidScore, CorWindowExpired,
		CorPatternMatchFailed, CorModelDrift, CorHypothesisInvalidated,
		CorActorConflict,

		RspExecFailed, RspTimeout, RspInvalidAction, RspRateLimited,
		RspHandlerNotFound, RspTimingAnomaly, RspEntropyLow,
		RspBehavioralInconsistency,

		LogWriteFailed, LogRotateFailed, LogBufferFull, LogSerialization,
		LogInitFailed, LogFlushFailed, LogQueueOverflow,

		PltUnsupported, PltSyscallFailed, PltPermissionDenied,
		PltResourceExhausted, PltEnvDetectFailed, PltProcessSpawnFailed,
		PltResourceLimit,

		IOReadFailed, IOWriteFailed, IONetworkError, IOTimeout, IONotFound,
		IOMetadataFailed, IOOpenFailed, IOPermissionDenied, IOInterrupted,
		IOInvalidInput, IOBrokenPipe, IOConnectionReset, IOConnectionRefused,
		IOAlreadyExists, IOIsDirectory,
	}
}

package mapping

import "covest/internal/domain"

// defaultEntries is the curated table for the CrookedSentry app, in report order
var defaultEntries = []domain.MappingEntry{
	{Source: "FrigateEventAPIClient.swift", Test: "FrigateEventAPIClientTests.swift"},
	{Source: "SettingsStore.swift", Test: "SettingsStoreTests.swift"},
	{Source: "CameraFeedCard.swift", Test: "CameraFeedLoadingTests.swift"},
	{Source: "ImageLoader.swift", Test: "CameraFeedLoadingTests.swift"},
	{Source: "LiveFeedAPIClient.swift", Test: "CameraFeedLoadingTests.swift"},
	{Source: "NetworkSecurityDebugger.swift", Test: "NetworkSecurityDebuggerTests.swift"},
	{Source: "SecureAPIClient.swift", Test: "SecureAPIClientTests.swift"},
	{Source: "NetworkSecurityValidator.swift", Test: "NetworkSecurityValidatorTests.swift"},
	{Source: "VPNManager.swift", Test: "VPNConnectionStateTests.swift"},
	{Source: "NetworkManager.swift", Test: "SecureAPIClientTests.swift"},
	{Source: "HTTPMethod.swift", Test: "FrigateEventAPIClientTests.swift"},
	{Source: "AuthHeaders.swift", Test: "NetworkSecurityDebuggerTests.swift"},
}

// Default returns the built-in mapping
func Default() *domain.CoverageMapping {
	return domain.NewCoverageMapping(defaultEntries)
}

package cas

// ScanPattern exposes scanPattern for tests.
var ScanPattern = scanPattern

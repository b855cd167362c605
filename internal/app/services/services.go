package services

// Services defined in this package:
// - AuthService: login, token refresh and account lookup
// - ProgramService: stored program aggregates and their draft sessions
// - PortalService: the student-facing read surface

// Package repository provides the client for the content-management API.
//
// Every call is paced through a shared rate limiter so long export and
// import runs stay under the API's request budget. The Client interface
// lets the pipeline run against a fake in tests.
package repository

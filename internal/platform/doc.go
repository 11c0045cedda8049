// Package platform contains OS integration: the downloads directory,
// revealing and opening saved files, and the system language.
package platform

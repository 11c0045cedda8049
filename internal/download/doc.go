// Package download follows conversion jobs on the service. A Poller watches
// the status of the single active job and a Saver copies finished result
// files to local disk.
package download

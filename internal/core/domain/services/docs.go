// Package services contains stateless domain services that implement business
// rules spanning more than one aggregate. The central one is the tenant
// authorization policy deciding which actors may mutate which resources.
package services

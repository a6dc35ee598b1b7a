// Package di provides an Fx module that loads a factory manifest and makes
// the built factories available through dependency injection.
package di

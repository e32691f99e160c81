package keymanager

// Key is the contract every managed key type must satisfy. A key is an
// opaque, immutable record of key material plus metadata; the manager only
// needs to see its declared version to enforce the forward-incompatibility
// guard. Everything else about the key is the algorithm package's business.
//
// Keys are caller-owned. The manager never retains a key beyond a single
// call, and registered factories are under the same obligation.
type Key interface {
	// Version returns the version the key was created with. A manager
	// rejects keys whose version exceeds its own.
	Version() uint32
}

// Material classifies the role of a manager's key material.
type Material int

const (
	// MaterialUnknown is the zero value and never valid for a built manager.
	MaterialUnknown Material = iota

	// MaterialSymmetric identifies symmetric key material.
	MaterialSymmetric

	// MaterialAsymmetricPrivate identifies the private half of a key pair.
	MaterialAsymmetricPrivate

	// MaterialAsymmetricPublic identifies the public half of a key pair.
	MaterialAsymmetricPublic

	// MaterialRemote identifies key material held by a remote system;
	// the local key value is only a reference to it.
	MaterialRemote
)

// String returns the classification name.
func (m Material) String() string {
	switch m {
	case MaterialSymmetric:
		return "SYMMETRIC"
	case MaterialAsymmetricPrivate:
		return "ASYMMETRIC_PRIVATE"
	case MaterialAsymmetricPublic:
		return "ASYMMETRIC_PUBLIC"
	case MaterialRemote:
		return "REMOTE"
	default:
		return "UNKNOWN"
	}
}

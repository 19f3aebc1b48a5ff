package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// session token on authenticated requests.
const AccessTokenHeaderName = "access_token"

// MainStoreAlias is the store id that resolves to the account's default
// container.
const MainStoreAlias = "main"

// StoreKind is the container kind used for password stores.
const StoreKind = "store"

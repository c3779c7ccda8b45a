package errors

// MinAvailable is the first CodeError this module is free to claim for
// its own ranges. errcode starts its five codes here.
const MinAvailable = 4000

package download

// Package download implements the submit/render cycle: input validation,
// platform resolution, the single backend request and the mapping of its
// response into a view state and a renderable result view. State transitions
// are a pure function (Next); the Controller wraps them with the I/O boundary
// and UI update callbacks.

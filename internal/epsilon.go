package internal

// Epsilon is the tolerance used when comparing knot values and parameters.
const Epsilon = 1e-10

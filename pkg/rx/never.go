package rx

// Never is the failure type of producers that are statically unable to fail.
// No Completion carrying a Never failure is ever constructed; consumers of a
// Producer[T, Never] only ever observe Finished.
type Never struct{}

package types

// Validation rule ids. These are stable and safe to match on.
const (
	RulePitchStep               = "pitch_step_validation"
	RulePitchOctave             = "pitch_octave_validation"
	RulePitchAlter              = "pitch_alter_validation"
	RuleDurationPositive        = "duration_positive_validation"
	RuleDivisionsPositive       = "divisions_positive_validation"
	RuleKeyFifths               = "key_signature_fifths_validation"
	RuleKeyMode                 = "key_signature_mode_validation"
	RuleTimeBeats               = "time_signature_beats_validation"
	RuleTimeBeatType            = "time_signature_beat_type_validation"
	RuleRestNoPitch             = "rest_no_pitch_validation"
	RulePitchRequired           = "pitch_required_validation"
	RuleBeamNumber              = "beam_number_validation"
	RuleBeamType                = "beam_type_validation"
	RuleBeamNoteCount           = "beam_note_count_validation"
	RuleTimeModActual           = "time_modification_actual_validation"
	RuleTimeModNormal           = "time_modification_normal_validation"
	RuleTimeModDots             = "time_modification_dots_validation"
	RuleMeasureNumber           = "measure_number_validation"
	RuleMeasureDuration         = "measure_duration_validation"
	RulePartReference           = "part_reference_validation"
	RulePartIDUnique            = "part_id_unique_validation"
	RuleStructural              = "structural_validation"
	RuleMalformedXML            = "xml_well_formed_validation"
	RuleRootElement             = "root_element_validation"
	RulePartListMissing         = "part_list_missing_warning"
	RulePartGroupUnsupported    = "part_group_unsupported_warning"
	RuleBackupUnsupported       = "backup_unsupported_warning"
	RuleForwardUnsupported      = "forward_unsupported_warning"
	RuleEndingIncomplete        = "ending_incomplete_warning"
	RuleEmptyWords              = "empty_words_warning"
	RuleOrphanedTie             = "orphaned_tie_warning"
	RuleUnknownVariant          = "unknown_variant_warning"
	RuleNoteSkipped             = "note_skipped_warning"
	RuleSenzaMisura             = "senza_misura_warning"
	RulePrintDuplicate          = "print_duplicate_warning"
	RuleArchiveContainer        = "archive_container_warning"
	RuleLayout                  = "layout_warning"
	RuleMeasureDurationAdvisory = "measure_duration_warning"
)

package steps

// Each variant in this package registers itself with the action package's
// typetag registry from its own init(), mirroring
// storage.OperationPhase's string-dispatch convention: mkdir_tree,
// add_group, add_user, fetch_archive, write_config_file,
// edit_shell_profile, systemd_unit, and (darwin only) encrypted_volume and
// launchd_unit.
